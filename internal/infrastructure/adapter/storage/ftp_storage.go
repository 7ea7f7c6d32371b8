package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
)

// ftpConn is the subset of *ftp.ServerConn used for uploads
type ftpConn interface {
	Login(user, password string) error
	MakeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

type dialFunc func(ctx context.Context, addr string, timeout time.Duration) (ftpConn, error)

func dialFTP(ctx context.Context, addr string, timeout time.Duration) (ftpConn, error) {
	return ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
}

// FTPStorage implements external.FileStorage on an FTP server whose root is
// also served over HTTP at PublicBaseURL
type FTPStorage struct {
	addr          string
	username      string
	password      string
	rootDir       string
	publicBaseURL string
	timeout       time.Duration
	dial          dialFunc
	logger        coreport.Logger
}

// NewFTPStorage creates a new FTPStorage instance
func NewFTPStorage(cfg config.StorageConfig, logger coreport.Logger) *FTPStorage {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FTPStorage{
		addr:          net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		username:      cfg.Username,
		password:      cfg.Password,
		rootDir:       strings.TrimRight(cfg.RootDir, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		timeout:       timeout,
		dial:          dialFTP,
		logger:        logger,
	}
}

// Upload stores content at objectPath and returns its public URL.
// Each upload uses its own connection.
func (s *FTPStorage) Upload(ctx context.Context, objectPath string, content io.Reader) (string, error) {
	objectPath = strings.TrimLeft(path.Clean("/"+objectPath), "/")
	remotePath := s.rootDir + "/" + objectPath

	conn, err := s.dial(ctx, s.addr, s.timeout)
	if err != nil {
		return "", fmt.Errorf("failed to connect to FTP: %w", err)
	}
	defer func() {
		if err := conn.Quit(); err != nil {
			s.logger.Debug("FTP quit failed", map[string]any{"error": err.Error()})
		}
	}()

	if err := conn.Login(s.username, s.password); err != nil {
		return "", fmt.Errorf("failed to login to FTP: %w", err)
	}

	// MakeDir fails for directories that already exist; Stor reports real problems.
	for _, dir := range parentDirs(remotePath) {
		_ = conn.MakeDir(dir)
	}

	if err := conn.Stor(remotePath, content); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := s.publicBaseURL + "/" + objectPath
	s.logger.Info("Object uploaded", map[string]any{"path": objectPath, "url": url})
	return url, nil
}

// parentDirs lists every ancestor directory of p, shallowest first
func parentDirs(p string) []string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return nil
	}

	var dirs []string
	prefix := ""
	if strings.HasPrefix(dir, "/") {
		prefix = "/"
	}
	current := ""
	for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
		if current == "" {
			current = prefix + part
		} else {
			current = current + "/" + part
		}
		dirs = append(dirs, current)
	}
	return dirs
}
