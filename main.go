// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/glambook/salon-service/cmd"

func main() {
	cmd.Execute()
}
