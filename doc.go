/*
Package sheets-bridge synchronises the time regions of an audio editing session with a Google Sheets spreadsheet
stored in a Google Drive folder.

sheets-bridge is intended to be invoked by an audio editor extension, which reads the JSON it writes to the console
(or to the --output-file) and hands back the edited regions as a JSON file.

sheets-bridge supports the following commands:

  - authorise, to authorise access to Google Drive and Google Sheets
  - list, to list the sub-folders of a Google Drive folder
  - get, to download the .wav file in a folder and retrieve the regions from the folder spreadsheet
  - update, to write edited regions back to the spreadsheet 'in' and 'out' columns
*/
package bridge
