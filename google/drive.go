package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	FOLDER      = "application/vnd.google-apps.folder"
	SPREADSHEET = "application/vnd.google-apps.spreadsheet"

	// ChunkSize is the number of bytes requested per download round trip.
	ChunkSize = 8 * 1024 * 1024
)

type File struct {
	ID       string
	Name     string
	MimeType string
}

type Drive struct {
	service *drive.Service
	chunk   int64
	debug   bool
}

func NewDrive(ctx context.Context, client *http.Client, debug bool) (*Drive, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Drive{
		service: service,
		chunk:   ChunkSize,
		debug:   debug,
	}, nil
}

// Folders returns the sub-folders of a folder.
func (d *Drive) Folders(ctx context.Context, folder string) ([]File, error) {
	q := fmt.Sprintf("'%v' in parents and mimeType='%v' and trashed=false", quote(folder), FOLDER)

	return d.list(ctx, q)
}

// Files returns everything directly under a folder.
func (d *Drive) Files(ctx context.Context, folder string) ([]File, error) {
	q := fmt.Sprintf("'%v' in parents and trashed=false", quote(folder))

	return d.list(ctx, q)
}

func (d *Drive) list(ctx context.Context, q string) ([]File, error) {
	files := []File{}

	call := d.service.Files.List().
		Q(q).
		Fields("nextPageToken, files(id, name, mimeType)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)

	err := call.Pages(ctx, func(page *drive.FileList) error {
		for _, f := range page.Files {
			files = append(files, File{
				ID:       f.Id,
				Name:     f.Name,
				MimeType: f.MimeType,
			})
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("unable to list Drive folder (%w)", err)
	}

	return files, nil
}

// Download copies the file contents to w in fixed size ranges and returns the number of
// bytes written.
func (d *Drive) Download(ctx context.Context, fileID string, w io.Writer) (int64, error) {
	var offset int64
	var total int64 = -1

	for total < 0 || offset < total {
		call := d.service.Files.Get(fileID).SupportsAllDrives(true).Context(ctx)
		call.Header().Set("Range", fmt.Sprintf("bytes=%d-%d", offset, offset+d.chunk-1))

		response, err := call.Download()
		if err != nil {
			var gerr *googleapi.Error
			if offset == 0 && errors.As(err, &gerr) && gerr.Code == http.StatusRequestedRangeNotSatisfiable {
				return 0, nil
			}

			return offset, fmt.Errorf("error downloading file %v (%w)", fileID, err)
		}

		n, err := io.Copy(w, response.Body)
		response.Body.Close()

		if err != nil {
			return offset + n, fmt.Errorf("error downloading file %v (%w)", fileID, err)
		}

		offset += n

		if response.StatusCode != http.StatusPartialContent {
			total = offset
		} else if size, ok := contentLength(response.Header.Get("Content-Range")); ok {
			total = size
		} else if n < d.chunk {
			total = offset
		}

		if d.debug {
			log.Printf("%-5s downloaded %v of %v bytes", "DEBUG", offset, total)
		}

		if n == 0 && offset < total {
			return offset, fmt.Errorf("error downloading file %v (short read at %v of %v bytes)", fileID, offset, total)
		}
	}

	return offset, nil
}

// contentLength extracts the complete length from a 'bytes <first>-<last>/<length>' header.
func contentLength(header string) (int64, bool) {
	match := regexp.MustCompile(`^bytes\s+[0-9]+-[0-9]+/([0-9]+)$`).FindStringSubmatch(strings.TrimSpace(header))
	if len(match) < 2 {
		return 0, false
	}

	N, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return N, true
}

func quote(id string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(id)
}
