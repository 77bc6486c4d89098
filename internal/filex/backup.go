package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BackupDatabase copies the database file at dbPath into backupDir and
// returns the path of the copy. The backup name carries a timestamp and
// a short random suffix so repeated backups never collide.
func BackupDatabase(dbPath string, backupDir string) (string, error) {
	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(backupDir, 0o700); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s.db",
		trimExt(filepath.Base(dbPath)),
		time.Now().Format("20060102-150405"),
		uuid.NewString()[:8])
	dstPath := filepath.Join(backupDir, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("copy database: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return dstPath, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
