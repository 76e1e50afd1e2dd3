// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/dsadigitalplatform/admin-service/cmd"

func main() {
	cmd.Execute()
}
