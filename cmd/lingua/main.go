/*
Command lingua formats numbers, currency amounts, percentages and dates for
a culture, wraps text to a column width and compares strings with a
culture's collation rules.

	lingua number --culture de-DE 1234567.891
	lingua currency --code JPY 1234.5
	lingua date --style Long "2024-03-05 14:07"
	lingua wrap --width 40 < README.md
	lingua compare --strength Primary resume résumé

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/lingua/cmd/lingua/commands"
)

func main() {
	cli := commands.New(os.Stdout)
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "lingua: %v\n", err)
		os.Exit(1)
	}
}
