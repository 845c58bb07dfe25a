package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/linshaoyong/griddle/constants"
)

var (
	// Headers table column titles
	Headers = []string{"种类", "档位", "买入触发价", "买入价", "买入金额", "入股数", "卖出触发价", "卖出价", "出股数"}
)

// Renderer render tables
type Renderer interface {
	Render(w io.Writer, tables []*Table) error
}

// NewRenderer create renderer by format name
func NewRenderer(format string, colors bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case "markdown", "md":
		return &Markdown{Colors: colors}, nil
	case "xlsx", "excel":
		return &Excel{}, nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownFormat, format)
	}
}
