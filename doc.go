// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package gsheets-append appends rows of values to a Google Sheets worksheet using a service account.

The sheet package provides the underlying operations:

  - AppendValues, to append a row as USER_ENTERED values (returns the number of updated cells)
  - AppendRow, to append a row of literal strings
  - ReformatLastRow, to rewrite the last row of a worksheet as USER_ENTERED values with any formulas escaped
  - AppendAndAdjust, to append a row of literal strings and then reformat it
  - SheetID, to look up the numeric ID of a worksheet by name

gsheets-append can also be used from the command line and supports the following commands:

  - append, to append a row (or the rows in a TSV file) as user entered values
  - append-row, to append a row of strings, optionally reformatting it as user entered values
  - reformat, to reformat the last row of a worksheet
  - sheet-id, to display the ID of a worksheet
  - get, to download a Google Sheets worksheet as a TSV file
  - credentials, to store service account keys in the keyring
*/
package gsheets
