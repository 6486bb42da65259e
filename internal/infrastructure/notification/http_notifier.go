// Package notification delivers plain-text messages to a configured HTTP
// sink.
package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

const requestTimeout = 10 * time.Second

// HTTPNotifier sends one GET per message to a URL template where `${msg}` is
// replaced with the URL-encoded message. An empty template disables delivery
// entirely.
type HTTPNotifier struct {
	urlTemplate string
	http        *http.Client
}

var _ interfaces.INotifier = (*HTTPNotifier)(nil)

func NewHTTPNotifier(urlTemplate string) *HTTPNotifier {
	return &HTTPNotifier{
		urlTemplate: urlTemplate,
		http:        &http.Client{Timeout: requestTimeout},
	}
}

func (n *HTTPNotifier) Notify(ctx context.Context, msg string) error {
	if n.urlTemplate == "" || msg == "" {
		return nil
	}

	target := strings.ReplaceAll(n.urlTemplate, "${msg}", url.QueryEscape(msg))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := n.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification sink returned status %d", resp.StatusCode)
	}
	return nil
}
