package services

import (
	"context"
	"log"
	"sync"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

const defaultHotelRating = 4.5

// EnrichmentServiceInterface augments a generated trip with image URLs and
// geocoded coordinates. Enrichment mutates the trip in place and never
// fails: a lookup miss leaves the item's pre-existing values alone.
type EnrichmentServiceInterface interface {
	EnrichTrip(ctx context.Context, trip *response_models.GeneratedTrip, destinationHint string)
}

type PlaceEnrichmentService struct {
	geocoder utils.GeocoderInterface
}

func NewPlaceEnrichmentService(geocoder utils.GeocoderInterface) EnrichmentServiceInterface {
	return &PlaceEnrichmentService{
		geocoder: geocoder,
	}
}

// EnrichTrip runs the hotel collection and each day's activity collection
// concurrently. Every collection is a join-all: all of its lookups settle
// (success or failure) before the collection counts as enriched, and one
// item's failure never touches its siblings.
func (s *PlaceEnrichmentService) EnrichTrip(ctx context.Context, trip *response_models.GeneratedTrip, destinationHint string) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.enrichHotels(ctx, trip.Hotels, destinationHint)
	}()

	for i := range trip.Itinerary {
		day := &trip.Itinerary[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.enrichActivities(ctx, day.Activities, destinationHint)
		}()
	}

	wg.Wait()
}

func (s *PlaceEnrichmentService) enrichHotels(ctx context.Context, hotels []response_models.Hotel, hint string) {
	var wg sync.WaitGroup
	for i := range hotels {
		hotel := &hotels[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			hotel.ImageURL = utils.BuildImageURL(hotel.ImageQuery)
			if coords := s.lookupWithHint(ctx, hotel.Name, hint); coords != nil {
				hotel.GeoCoordinates = coords
			}
			if hotel.Rating == 0 {
				hotel.Rating = defaultHotelRating
			}
		}()
	}
	wg.Wait()
}

func (s *PlaceEnrichmentService) enrichActivities(ctx context.Context, activities []response_models.Activity, hint string) {
	var wg sync.WaitGroup
	for i := range activities {
		activity := &activities[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			activity.ImageURL = utils.BuildImageURL(activity.ImageQuery)
			if coords := s.lookupWithHint(ctx, activity.PlaceName, hint); coords != nil {
				activity.GeoCoordinates = *coords
			}
		}()
	}
	wg.Wait()
}

// lookupWithHint geocodes the bare query, then retries once with the
// destination hint appended when the first pass yields nothing. Errors are
// logged and swallowed: no coordinates is a per-item outcome, not a failure.
func (s *PlaceEnrichmentService) lookupWithHint(ctx context.Context, query, hint string) *response_models.GeoCoordinates {
	coords, err := s.geocoder.Lookup(ctx, query)
	if err != nil {
		log.Printf("geocoding %q failed: %v", query, err)
		coords = nil
	}
	if coords != nil || hint == "" {
		return coords
	}

	coords, err = s.geocoder.Lookup(ctx, query+" "+hint)
	if err != nil {
		log.Printf("geocoding %q with hint failed: %v", query, err)
		return nil
	}
	return coords
}
