// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package chatroom delivers a delayed welcome notification after joining a simulated chat room.
*/
package chatroom
