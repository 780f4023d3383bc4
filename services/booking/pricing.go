package booking

import (
	"math"
	"time"

	"capetown/models"
)

const dateLayout = "2006-01-02"

// Nights computes the number of billable nights between two dates.
// Partial days round up, matching how the booking form quotes stays.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, validationf("invalid check-in date %q", checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, validationf("invalid check-out date %q", checkOut)
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights <= 0 {
		return 0, validationf("check-out must be after check-in")
	}
	return nights, nil
}

// ComputeTotalPrice prices a booking from the catalog item's fixed rate.
// Accommodation bills per night per room; restaurants per person.
func ComputeTotalPrice(item *models.CatalogItem, input models.BookingInput) (float64, error) {
	if item.IsAccommodation() {
		nights, err := Nights(input.CheckIn, input.CheckOut)
		if err != nil {
			return 0, err
		}
		return item.PricePerNight * float64(nights) * float64(input.Rooms), nil
	}
	return item.AvgPrice * float64(input.PartySize), nil
}
