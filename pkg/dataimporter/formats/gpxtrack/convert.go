package gpxtrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/trailhub/trailhub/pkg/dataimporter/datasets"
	"github.com/trailhub/trailhub/pkg/gpx"
	"github.com/trailhub/trailhub/pkg/traildata"
	"github.com/trailhub/trailhub/pkg/util"
)

func convertTrack(gpxTrack *gpx.Track, document *gpx.Document, dataset datasets.DataSet, index int) *traildata.Track {
	record := &traildata.Track{
		PrimaryIdentifier: fmt.Sprintf("%s-track-%d", dataset.Identifier, index+1),
		Creator:           document.Creator,
	}

	if gpxTrack.Name != nil {
		record.Name = *gpxTrack.Name
	}
	if gpxTrack.Description != nil {
		record.Description = *gpxTrack.Description
	}

	if document.Metadata != nil && document.Metadata.Keywords != nil {
		var keywords []string
		for _, keyword := range strings.Split(*document.Metadata.Keywords, ",") {
			keywords = append(keywords, strings.TrimSpace(keyword))
		}

		record.Keywords = util.RemoveDuplicateStrings(keywords, []string{})
	}

	var coordinates [][]float64
	var startTime time.Time
	var endTime time.Time

	bounds := &traildata.TrackBounds{
		MinLatitude:  float64(gpx.MaxLatitude),
		MinLongitude: float64(gpx.MaxLongitude),
		MaxLatitude:  float64(gpx.MinLatitude),
		MaxLongitude: float64(gpx.MinLongitude),
	}

	pointCount := 0

	for _, segment := range gpxTrack.Segments {
		for _, point := range segment.Points {
			latitude := float64(point.Latitude)
			longitude := float64(point.Longitude)

			coordinates = append(coordinates, []float64{longitude, latitude})
			pointCount += 1

			if latitude < bounds.MinLatitude {
				bounds.MinLatitude = latitude
			}
			if latitude > bounds.MaxLatitude {
				bounds.MaxLatitude = latitude
			}
			if longitude < bounds.MinLongitude {
				bounds.MinLongitude = longitude
			}
			if longitude > bounds.MaxLongitude {
				bounds.MaxLongitude = longitude
			}

			if point.Time != nil {
				if startTime.IsZero() || point.Time.Before(startTime) {
					startTime = *point.Time
				}
				if endTime.IsZero() || point.Time.After(endTime) {
					endTime = *point.Time
				}
			}
		}
	}

	record.Geometry = traildata.NewLineString(coordinates)

	if pointCount > 0 {
		record.Bounds = bounds
	}

	record.Stats = traildata.TrackStats{
		PointCount:   pointCount,
		SegmentCount: len(gpxTrack.Segments),
		Distance:     record.Geometry.Length(),
		StartTime:    startTime,
		EndTime:      endTime,
	}

	return record
}

func fillWaypoint(record *traildata.Waypoint, gpxWaypoint *gpx.Waypoint, dataset datasets.DataSet, index int) {
	record.PrimaryIdentifier = waypointIdentifier(dataset, index)
	record.Location = traildata.NewLocation(float64(gpxWaypoint.Longitude), float64(gpxWaypoint.Latitude))

	if gpxWaypoint.Name != nil {
		record.Name = *gpxWaypoint.Name
	}
	if gpxWaypoint.Description != nil {
		record.Description = *gpxWaypoint.Description
	}
	if gpxWaypoint.Symbol != nil {
		record.Symbol = *gpxWaypoint.Symbol
	}
	if gpxWaypoint.Type != nil {
		record.Type = *gpxWaypoint.Type
	}
	if gpxWaypoint.Elevation != nil {
		elevation := *gpxWaypoint.Elevation
		record.Elevation = &elevation
	}
}

// TrackToGPX rebuilds a GPX document from a stored track, for serving back
// out of the API.
func TrackToGPX(track *traildata.Track) *gpx.Document {
	document := &gpx.Document{
		Version: gpx.SchemaVersion,
		Creator: "trailhub",
	}

	gpxTrack := &gpx.Track{}

	if track.Name != "" {
		name := track.Name
		gpxTrack.Name = &name
	}
	if track.Description != "" {
		description := track.Description
		gpxTrack.Description = &description
	}

	segment := &gpx.TrackSegment{}
	for _, coordinate := range track.Geometry.Coordinates {
		segment.Points = append(segment.Points, &gpx.Waypoint{
			Latitude:  gpx.Latitude(coordinate[1]),
			Longitude: gpx.Longitude(coordinate[0]),
		})
	}
	gpxTrack.Segments = append(gpxTrack.Segments, segment)

	document.Tracks = append(document.Tracks, gpxTrack)

	if track.Bounds != nil {
		document.Metadata = &gpx.Metadata{
			Bounds: &gpx.Bounds{
				MinLatitude:  gpx.Latitude(track.Bounds.MinLatitude),
				MinLongitude: gpx.Longitude(track.Bounds.MinLongitude),
				MaxLatitude:  gpx.Latitude(track.Bounds.MaxLatitude),
				MaxLongitude: gpx.Longitude(track.Bounds.MaxLongitude),
			},
		}
	}

	return document
}
