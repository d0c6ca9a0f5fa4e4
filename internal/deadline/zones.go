package deadline

// Zone pairs a display label with an IANA zone identifier.
type Zone struct {
	Label string
	ID    string
}

// USZones lists the seven U.S. civil timezones shown next to a running
// countdown, east to west.
var USZones = []Zone{
	{Label: "Eastern", ID: "America/New_York"},
	{Label: "Central", ID: "America/Chicago"},
	{Label: "Mountain", ID: "America/Denver"},
	{Label: "Arizona", ID: "America/Phoenix"},
	{Label: "Pacific", ID: "America/Los_Angeles"},
	{Label: "Alaska", ID: "America/Anchorage"},
	{Label: "Hawaii", ID: "Pacific/Honolulu"},
}

// FindZone returns the zone with the given ID, or nil.
func FindZone(zones []Zone, id string) *Zone {
	for i := range zones {
		if zones[i].ID == id {
			return &zones[i]
		}
	}
	return nil
}
