package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a snapshot file. In paired mode lines alternate between a
// displacement snapshot and its companion.
func Load(path string, paired bool) (*Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := Parse(file, paired)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// maxLineBytes bounds a single snapshot line.
const maxLineBytes = 64 << 20

// Parse reads comma-separated snapshots from r, one per line. Blank lines
// are skipped. Every snapshot must have the length of the first one.
// Tokens are split on commas only; quotes have no special meaning.
func Parse(r io.Reader, paired bool) (*Data, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	d := &Data{Primary: TimeSeries{}}
	if paired {
		d.Companion = TimeSeries{}
	}

	width, records, line, lastLine := -1, 0, 0, 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		lastLine = line

		snap, err := parseRecord(strings.Split(text, ","), line)
		if err != nil {
			return nil, err
		}
		if width < 0 {
			width = len(snap)
		} else if len(snap) != width {
			return nil, &ShapeError{Line: line, Want: width, Got: len(snap)}
		}

		if paired && records%2 == 1 {
			d.Companion = append(d.Companion, snap)
		} else {
			d.Primary = append(d.Primary, snap)
		}
		records++
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line + 1, Err: err}
	}

	if records == 0 {
		return nil, ErrEmptyInput
	}
	if paired && records%2 == 1 {
		return nil, &ParseError{Line: lastLine, Err: ErrOddLineCount}
	}
	return d, nil
}

func parseRecord(record []string, line int) (Snapshot, error) {
	snap := make(Snapshot, len(record))
	for j, tok := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: j + 1, Token: tok, Err: ErrSyntax}
		}
		snap[j] = v
	}
	return snap, nil
}

// Encode writes d in the snapshot line format. Values use the shortest
// representation that parses back to the same float64.
func Encode(w io.Writer, d *Data) error {
	if d.Paired() && len(d.Companion) != len(d.Primary) {
		return fmt.Errorf("encode: %d primary steps, %d companion steps", len(d.Primary), len(d.Companion))
	}

	bw := bufio.NewWriter(w)
	for i, snap := range d.Primary {
		writeSnapshot(bw, snap)
		if d.Paired() {
			writeSnapshot(bw, d.Companion[i])
		}
	}
	return bw.Flush()
}

// writeSnapshot appends one line to w; errors surface on Flush.
func writeSnapshot(w *bufio.Writer, s Snapshot) {
	var buf []byte
	for j, v := range s {
		if j > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, '\n')
	w.Write(buf)
}
