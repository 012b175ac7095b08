// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package connection provides a simulated chat server connection that raises a single
"connected" event after a short delay.
*/
package connection
