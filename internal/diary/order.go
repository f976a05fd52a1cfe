package diary

// earlier orders diary entries chronologically. Entries without a time sort
// after every timed entry; ties break on entity id so the order is stable
// across renders.
func earlier(aTime *string, aID uint, bTime *string, bID uint) bool {
	switch {
	case aTime == nil && bTime == nil:
		return aID < bID
	case aTime == nil:
		return false
	case bTime == nil:
		return true
	case *aTime != *bTime:
		return *aTime < *bTime
	default:
		return aID < bID
	}
}
