// 包 dataset：读取全局视图构建器产出的坐标文档与区域文档，并按目录约定定位文件
package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"area-accuracy/internal/area"
	"area-accuracy/internal/logger"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// readDocument：读取文件原始字节并返回（必要时解压后的）内容读取器与原始字节摘要
// 约束：文件名以 .gz 结尾或以 gzip 魔数开头时透明解压；文件缺失视为 ErrInvalidInput
func readDocument(path string) (io.Reader, uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", area.ErrInvalidInput, err)
	}
	digest := xxhash.Sum64(raw)
	logger.L().Debug("document_read", "path", path, "bytes", len(raw), "digest", fmt.Sprintf("%016x", digest))
	if strings.HasSuffix(strings.ToLower(path), ".gz") || bytes.HasPrefix(raw, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %v", area.ErrInvalidInput, path, err)
		}
		return zr, digest, nil
	}
	return bytes.NewReader(raw), digest, nil
}
