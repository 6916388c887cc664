package commands

import (
	"regexp"
	"strings"
)

// folderID extracts the folder ID from a Google Drive folder URL. Anything else is taken
// to be a folder ID.
func folderID(link string) string {
	link = strings.TrimSpace(link)

	if match := regexp.MustCompile(`folders/([a-zA-Z0-9_-]+)`).FindStringSubmatch(link); len(match) > 1 {
		return match[1]
	}

	return link
}

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL. Anything else is
// taken to be a spreadsheet ID.
func spreadsheetID(link string) string {
	link = strings.TrimSpace(link)

	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(link); len(match) > 1 {
		return match[1]
	}

	return link
}
