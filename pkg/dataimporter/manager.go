package dataimporter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/dataimporter/formats"
	"github.com/trailhub/trailhub/pkg/dataimporter/formats/gpxtrack"
	"github.com/trailhub/trailhub/pkg/redis_client"
	"github.com/trailhub/trailhub/pkg/traildata"
)

const importEventQueue = "trailhub-import-events"

func formatFor(dataset datasets.DataSet) (formats.Format, error) {
	switch dataset.Format {
	case datasets.DataSetFormatGPX:
		return &gpxtrack.Source{}, nil
	}

	return nil, fmt.Errorf("unsupported dataset format %q", dataset.Format)
}

func openSource(source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("downloading %s: %s", source, resp.Status)
		}

		return resp.Body, nil
	}

	return os.Open(source)
}

func importDataset(dataset datasets.DataSet) error {
	format, err := formatFor(dataset)
	if err != nil {
		return err
	}

	reader, err := openSource(dataset.Source)
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := format.ParseFile(reader); err != nil {
		return err
	}

	datasource := &traildata.DataSource{
		OriginalFormat: string(dataset.Format),
		Provider:       dataset.Provider.Name,
		Dataset:        dataset.Identifier,
		Identifier:     fmt.Sprintf("%d", time.Now().Unix()),
	}

	if err := format.Import(dataset, datasource); err != nil {
		return err
	}

	publishImportEvent(dataset, datasource)

	return nil
}

func publishImportEvent(dataset datasets.DataSet, datasource *traildata.DataSource) {
	if redis_client.QueueConnection == nil {
		return
	}

	queue, err := redis_client.QueueConnection.OpenQueue(importEventQueue)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open import event queue")
		return
	}

	eventBytes, _ := json.Marshal(map[string]interface{}{
		"Dataset":    dataset.Identifier,
		"DataSource": datasource,
		"Timestamp":  time.Now().Format(time.RFC3339),
	})

	if err := queue.PublishBytes(eventBytes); err != nil {
		log.Error().Err(err).Msg("Failed to publish import event")
	}
}
