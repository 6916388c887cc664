package commands

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

var SCOPES = []string{
	drive.DriveReadonlyScope,
	sheets.SpreadsheetsScope,
}

// authorize returns an HTTP client for the Drive and Sheets APIs. The stored token is
// refreshed if it has expired and rewritten if it changed. The browser consent flow is
// only started if there is no usable token.
func authorize(ctx context.Context, credentials string, tokens string) (*http.Client, error) {
	config, err := oauthConfig(credentials)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokens)
	if err != nil || (!token.Valid() && token.RefreshToken == "") {
		if token, err = tokenFromWeb(ctx, config); err != nil {
			return nil, err
		} else if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	source := config.TokenSource(ctx, token)
	refreshed, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("unable to refresh access token (%w)", err)
	}

	if refreshed.AccessToken != token.AccessToken {
		if err := saveToken(tokens, refreshed); err != nil {
			return nil, err
		}
	}

	return oauth2.NewClient(ctx, source), nil
}

func oauthConfig(credentials string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%v not found - download the OAuth2 client credentials from the Google Cloud Console", credentials)
	} else if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, SCOPES...)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file %v (%w)", credentials, err)
	}

	return config, nil
}

// tokenFromWeb runs the OAuth2 consent flow in the browser, receiving the authorisation
// code on a loopback HTTP server.
func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("unable to start authorisation listener (%w)", err)
	}

	port := listener.Addr().(*net.TCPAddr).Port
	state := nonce()

	cfg := *config
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%v/", port)

	authorised := make(chan string, 1)
	failed := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		if rq.FormValue("state") != state {
			http.Error(w, "Invalid authorisation state", http.StatusBadRequest)
			return
		}

		if reason := rq.FormValue("error"); reason != "" {
			fmt.Fprintf(w, "Authorisation failed (%v)\n", reason)
			select {
			case failed <- fmt.Errorf("authorisation refused (%v)", reason):
			default:
			}
			return
		}

		code := rq.FormValue("code")
		if code == "" {
			http.Error(w, "Missing authorisation code", http.StatusBadRequest)
			return
		}

		fmt.Fprintf(w, "%v is authorised - you can close this window\n", APP)

		select {
		case authorised <- code:
		default:
		}
	})

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case failed <- err:
			default:
			}
		}
	}()

	defer srv.Shutdown(context.Background())

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Fprintf(os.Stderr, "\nOpen the following link in your browser to authorise %v:\n\n  %v\n\n", APP, url)
	if err := browse(url); err != nil {
		warnf("could not open authorisation page in your browser (%v)", err)
	}

	select {
	case <-interrupt:
		return nil, fmt.Errorf("authorisation cancelled")

	case err := <-failed:
		return nil, err

	case code := <-authorised:
		token, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		return token, nil
	}
}

func browse(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}

func nonce() string {
	b := make([]byte, 16)
	rand.Read(b)

	return hex.EncodeToString(b)
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}

	return token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%w)", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%w)", err)
	}

	return nil
}
