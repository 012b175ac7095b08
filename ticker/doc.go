// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package ticker provides an adjustable periodic ticker.

A Ticker invokes its current Action once per interval until stopped.  The action is held
in a cell that the dispatching goroutine reads at the moment each tick fires, so replacing
it with SetAction never restarts the timer and never lets a previously registered action
run afterward.  Changing the interval with SetInterval does restart the underlying timer.

	t, err := ticker.Start(time.Second, func() { fmt.Println("tick") })
	if err != nil {
		return err
	}

	defer t.Stop()
	t.SetAction(func() { fmt.Println("tock") })
*/
package ticker
