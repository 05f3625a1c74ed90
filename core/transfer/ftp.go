package transfer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"go.uber.org/zap"
)

// FTPSource fetches the snapshot file from an FTP server.
// A fresh session is opened per fetch; nothing is shared between runs.
type FTPSource struct {
	cfg Config
	log *zap.Logger
}

// NewFTPSource creates an FTP-backed snapshot source.
func NewFTPSource(cfg Config, log *zap.Logger) *FTPSource {
	return &FTPSource{cfg: cfg, log: log}
}

// Fetch connects, authenticates, and retrieves the configured file into
// memory. The session is closed on every exit path; a close failure is logged
// at warn and never masks the fetch result.
func (s *FTPSource) Fetch(ctx context.Context) ([]byte, error) {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	addr := s.cfg.Host
	if !strings.Contains(addr, ":") {
		addr += ":21"
	}

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrTransfer, addr, err)
	}
	defer func() {
		if quitErr := conn.Quit(); quitErr != nil {
			s.log.Warn("FTP session teardown failed", zap.Error(quitErr))
		}
	}()

	if err := conn.Login(s.cfg.User, s.cfg.Password); err != nil {
		return nil, fmt.Errorf("%w: login: %v", ErrTransfer, err)
	}

	resp, err := conn.Retr(s.cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: retrieve %s: %v", ErrTransfer, s.cfg.FilePath, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransfer, s.cfg.FilePath, err)
	}

	return data, nil
}
