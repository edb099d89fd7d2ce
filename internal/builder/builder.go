// 包 builder：调用外部区域构建工具，由坐标文档生成区域文档
package builder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"area-accuracy/internal/logger"
)

// 文档注释：外部区域构建命令
// 约束：Command 为空时不执行任何构建；调用形式为 <Command...> -p <maxPrefix> <coordsFile>，非零退出视为失败。
type Builder struct {
	Command string
	Timeout time.Duration
}

// Enabled：是否配置了构建命令
func (b Builder) Enabled() bool { return strings.TrimSpace(b.Command) != "" }

// Build：为单个坐标文档构建区域文档
func (b Builder) Build(ctx context.Context, coordsPath string, maxPrefix int) error {
	if !b.Enabled() {
		return nil
	}
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	fields := strings.Fields(b.Command)
	args := append(fields[1:], "-p", strconv.Itoa(maxPrefix), coordsPath)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	start := time.Now()
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("area builder %q on %s: %w: %s", b.Command, coordsPath, err, strings.TrimSpace(stderr.String()))
	}
	logger.L().Debug("area_build_done", "coords", coordsPath, "max_prefix", maxPrefix, "duration_ms", time.Since(start).Milliseconds(), "stdout_bytes", len(out))
	return nil
}
