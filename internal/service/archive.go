package service

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"GeoConsole/internal/model"
)

// zipEntry is one file to be packaged into an archive.
type zipEntry struct {
	Name string
	Data []byte
}

// buildZip packages the entries and returns the archive bytes and their
// SHA-256 hex digest.
func buildZip(entries []zipEntry) ([]byte, string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, "", err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, "", err
	}

	sum := sha256.Sum256(buf.Bytes())
	return buf.Bytes(), hex.EncodeToString(sum[:]), nil
}

// assetFileName returns the packaged file name for an asset.
func assetFileName(a model.Asset) string {
	if a.FileName != "" {
		return a.FileName
	}
	return fmt.Sprintf("%s.bin", a.DinaID)
}

// assetPayload loads the asset file from fileRoot. 파일이 없는 개발 환경에서는
// dina_id 기반의 대체 컨텐츠를 생성한다.
func assetPayload(fileRoot string, a model.Asset) []byte {
	if fileRoot != "" {
		if data, err := os.ReadFile(filepath.Join(fileRoot, assetFileName(a))); err == nil {
			return data
		}
	}
	return []byte(fmt.Sprintf("asset %s edition %d\n", a.DinaID, a.Edition))
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
