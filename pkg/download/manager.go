package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/binstash/internal/logger"
	pkgerrors "github.com/glorpus-work/binstash/pkg/errors"
	"github.com/glorpus-work/binstash/pkg/fsutil"
)

// ManagerImpl is a simple HTTP-based download manager with optional checksum
// verification. Downloads are written to a temp file next to the destination
// and moved into place only after a successful transfer, so the destination
// never holds a partial file.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "binstash/1.0"
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchInto downloads item to exactly the given destination path.
func (m *ManagerImpl) FetchInto(ctx context.Context, item Item, destination string, fctx FetchContext) error {
	if destination == "" || !filepath.IsAbs(destination) {
		return fmt.Errorf("destination must be absolute: %w: %s", pkgerrors.ErrInvalidPath, destination)
	}
	if item.URL == nil {
		return fmt.Errorf("nil URL: %w", pkgerrors.ErrFetchFailed)
	}

	if reused := m.tryReuseExisting(destination, item.Checksum); reused {
		logger.Debugf("reusing existing file for %s", fctx.Name)
		return nil
	}

	resp, err := m.doRequest(ctx, item)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp.Body, destination, fctx)
	if err != nil {
		return err
	}

	if item.Checksum != "" {
		ok, err := verifySHA256(tmpPath, item.Checksum)
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
		if !ok {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("checksum mismatch for %s: %w", item.URL, pkgerrors.ErrFileHashMismatch)
		}
	}

	return finalizeFile(tmpPath, destination)
}

func (m *ManagerImpl) tryReuseExisting(destination, checksum string) bool {
	st, err := os.Stat(destination)
	if err != nil || st.Size() == 0 {
		return false
	}
	if checksum == "" {
		return true
	}
	ok, err := verifySHA256(destination, checksum)
	return err == nil && ok
}

func (m *ManagerImpl) doRequest(ctx context.Context, item Item) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "download failed")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrFetchFailed)
	}
	return resp, nil
}

func writeBodyToTemp(body io.Reader, destination string, fctx FetchContext) (string, error) {
	if err := fsutil.EnsureFileDir(destination); err != nil {
		return "", pkgerrors.Wrap(err, "could not create destination dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(destination), "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if fctx.ShowProgress && fctx.ContentLength > 0 {
		body = &progressReader{r: body, name: fctx.Name, total: fctx.ContentLength}
	}

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, destination string) error {
	if err := fsutil.Move(tmpPath, destination); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(destination, fsutil.FileModeExec); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}

func verifySHA256(path string, wantHex string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, pkgerrors.Wrap(err, "open for checksum")
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return false, pkgerrors.Wrap(err, "hashing")
	}
	got := hex.EncodeToString(h.Sum(nil))
	return got == normalizeHex(wantHex), nil
}

func normalizeHex(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// progressReader logs transfer progress in quarter steps.
type progressReader struct {
	r     io.Reader
	name  string
	total int64

	read     int64
	lastStep int64
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)

	step := p.read * 4 / p.total
	if step > p.lastStep {
		p.lastStep = step
		logger.Debugf("fetching %s: %d%%", p.name, min(step*25, 100))
	}
	return n, err
}
