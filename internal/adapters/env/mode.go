package env

import (
	"os"

	"github.com/xilo-pro/xilo/internal/core"
)

func DetectMode() core.Mode {
	if os.Getenv("XILO_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
