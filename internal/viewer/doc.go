// Package viewer holds the state of the interactive string viewer.
//
// A [Session] owns the loaded series and the current time index. Control
// changes arrive through [Session.SetValue], which floors the control value
// to a time step and pushes the matching snapshots into a [Surface]:
//
//	sess, err := viewer.NewSession(data, fig)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//	sess.SetValue(2.9) // shows step 2
//
// # Axis scaling
//
// The primary (displacement) axis is fixed when the session is created.
// The companion axis is rescaled on every change, since velocity ranges
// swing far more between steps than displacement does.
package viewer
