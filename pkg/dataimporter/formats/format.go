package formats

import (
	"io"

	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/traildata"
)

type Format interface {
	ParseFile(io.Reader) error
	Import(datasets.DataSet, *traildata.DataSource) error
}
