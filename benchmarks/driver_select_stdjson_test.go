//go:build stdjson

package safenorm_test

import (
	"github.com/reoring/safenorm"
	drv "github.com/reoring/safenorm/driver/stdjson"
)

func init() {
	safenorm.SetJSONDriver(drv.Driver())
}
