// Copyright 2026 the drive-sheets authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package drive-sheets publishes tabular datasets to Google Sheets worksheets, resolving
image file names against Google Drive folders as it goes.

drive-sheets can be used from the command line but the store, sheet and dataset packages
are also usable as a library for embedding in e.g. report generators and catalog pipelines.

drive-sheets supports the following commands:

  - authorise, to authorise application access to Google Drive and Google Sheets
  - list, to list the files (or subfolders) of a Google Drive folder as TSV
  - upload, to upload a TSV dataset to a Google Sheets worksheet, resolving image
    columns to embedded-image formulas
  - link-column, to append a column of public Drive links to an existing worksheet
*/
package drivesheets
