package gpxtrack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trailhub/trailhub/pkg/database"
	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/gpx"
	"github.com/trailhub/trailhub/pkg/traildata"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Source is one parsed GPX file on its way into the canonical collections.
type Source struct {
	Document *gpx.Document

	ReaderSettings *gpx.ReaderSettings
}

func (source *Source) ParseFile(reader io.Reader) error {
	settings := source.ReaderSettings
	if settings == nil {
		settings = gpx.DefaultReaderSettings()
	}

	document, err := gpx.ParseXMLFile(reader, settings)
	if err != nil {
		return err
	}

	source.Document = document

	return nil
}

func (source *Source) Import(dataset datasets.DataSet, datasource *traildata.DataSource) error {
	if source.Document == nil {
		return errors.New("No document has been parsed yet")
	}
	if !dataset.SupportedObjects.Tracks {
		return errors.New("This format requires tracks to be enabled")
	}

	now := time.Now()

	// Tracks
	log.Info().Msg("Converting & Importing Tracks into Mongo")
	tracksCollection := database.GetCollection("tracks")

	var trackOperations []mongo.WriteModel

	for index, gpxTrack := range source.Document.Tracks {
		record := convertTrack(gpxTrack, source.Document, dataset, index)
		record.DataSource = datasource
		record.CreationDateTime = now
		record.ModificationDateTime = now

		replaceModel := mongo.NewReplaceOneModel()
		replaceModel.SetFilter(bson.M{"primaryidentifier": record.PrimaryIdentifier})
		replaceModel.SetReplacement(record)
		replaceModel.SetUpsert(true)

		trackOperations = append(trackOperations, replaceModel)
	}

	if len(trackOperations) > 0 {
		_, err := tracksCollection.BulkWrite(context.Background(), trackOperations, &options.BulkWriteOptions{})
		if err != nil {
			return err
		}
	}

	log.Info().Msgf(" - Imported %d tracks", len(trackOperations))

	// Waypoints
	if dataset.SupportedObjects.Waypoints && len(source.Document.Waypoints) > 0 {
		if err := source.importWaypoints(dataset, datasource, now); err != nil {
			return err
		}
	}

	return nil
}

func (source *Source) importWaypoints(dataset datasets.DataSet, datasource *traildata.DataSource, now time.Time) error {
	log.Info().Msg("Converting & Importing Waypoints into Mongo")
	waypointsCollection := database.GetCollection("waypoints")

	waypoints := source.Document.Waypoints

	var operationInsert uint64

	maxBatchSize := int(math.Ceil(float64(len(waypoints)) / float64(runtime.NumCPU())))
	numBatches := int(math.Ceil(float64(len(waypoints)) / float64(maxBatchSize)))

	processingGroup := sync.WaitGroup{}
	processingGroup.Add(numBatches)

	recordTemplate := traildata.Waypoint{
		CreationDateTime:     now,
		ModificationDateTime: now,
		DataSource:           datasource,
	}

	for i := 0; i < numBatches; i++ {
		lower := maxBatchSize * i
		upper := maxBatchSize * (i + 1)

		if upper > len(waypoints) {
			upper = len(waypoints)
		}

		batchSlice := waypoints[lower:upper]

		go func(gpxWaypoints []*gpx.Waypoint, offset int) {
			var operations []mongo.WriteModel
			var localOperationInsert uint64

			for index, gpxWaypoint := range gpxWaypoints {
				var record traildata.Waypoint
				copier.CopyWithOption(&record, recordTemplate, copier.Option{IgnoreEmpty: true, DeepCopy: true})

				fillWaypoint(&record, gpxWaypoint, dataset, offset+index)

				replaceModel := mongo.NewReplaceOneModel()
				replaceModel.SetFilter(bson.M{"primaryidentifier": record.PrimaryIdentifier})
				replaceModel.SetReplacement(record)
				replaceModel.SetUpsert(true)

				operations = append(operations, replaceModel)
				localOperationInsert += 1
			}

			atomic.AddUint64(&operationInsert, localOperationInsert)

			if len(operations) > 0 {
				_, err := waypointsCollection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to bulk write Waypoints")
				}
			}

			processingGroup.Done()
		}(batchSlice, lower)
	}

	processingGroup.Wait()

	log.Info().Msgf(" - Imported %d waypoints", operationInsert)

	return nil
}

func waypointIdentifier(dataset datasets.DataSet, index int) string {
	return fmt.Sprintf("%s-waypoint-%d", dataset.Identifier, index+1)
}
