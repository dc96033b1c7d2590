package wizard

// ValidateBase checks the base-info step before it may advance. The
// controller itself never validates; each step's form calls its own
// check and refuses to move forward on failure. createMode requires a
// banner upload; edit mode accepts the existing server-side image.
func ValidateBase(form FormData, createMode bool) (bool, string) {
	if form.Name.En == "" {
		return false, "English name is required"
	}
	if form.Name.Am == "" {
		return false, "Amharic name is required"
	}
	if form.BasePrice <= 0 {
		return false, "Base price must be positive"
	}
	if form.MinGuests > 0 && form.MaxGuests > 0 && form.MinGuests > form.MaxGuests {
		return false, "Minimum guests cannot exceed maximum guests"
	}
	if createMode && form.Banner.IsZero() {
		return false, "Banner image is required"
	}
	if form.PerPerson && form.PerPersonPrice <= 0 {
		return false, "Per-person price must be positive"
	}
	return true, ""
}

// ValidateHall checks the venue step. Declining the hall is always
// valid; including one requires a positive capacity.
func ValidateHall(form FormData) (bool, string) {
	if !form.IncludesHall {
		return true, ""
	}
	if form.Hall.Capacity <= 0 {
		return false, "Hall capacity must be positive"
	}
	return true, ""
}

// ValidateServices checks the services step: every listed service
// needs both translations.
func ValidateServices(form FormData) (bool, string) {
	for _, svc := range form.Services {
		if svc.En == "" || svc.Am == "" {
			return false, "Every service needs both English and Amharic names"
		}
	}
	return true, ""
}
