package domain

// ResolveActivities derives the activity names relevant to the chosen
// destination from the active activities catalog.
//
// The destination→activity relation is denormalized (names, not ids), so the
// two catalogs can drift apart. The policy is to tolerate drift rather than
// present a dead end:
//
//  1. No destination chosen, or no active activities at all → nothing.
//  2. Unknown destination, or one with no associated names → every active
//     activity (show everything rather than nothing).
//  3. Otherwise the destination's names intersected with the active catalog.
//  4. An empty intersection (stored names match no active activity) falls
//     back to every active activity, same as case 2.
func ResolveActivities(destinationName string, destinations []Destination, activities []Activity) []string {
	if destinationName == "" || len(activities) == 0 {
		return []string{}
	}

	var dest *Destination
	for i := range destinations {
		if destinations[i].Name == destinationName {
			dest = &destinations[i]
			break
		}
	}
	if dest == nil || len(dest.Activities) == 0 {
		return allActivityNames(activities)
	}

	active := make(map[string]bool, len(activities))
	for _, a := range activities {
		active[a.Name] = true
	}

	resolved := make([]string, 0, len(dest.Activities))
	for _, name := range dest.Activities {
		if active[name] {
			resolved = append(resolved, name)
		}
	}
	if len(resolved) == 0 {
		return allActivityNames(activities)
	}
	return resolved
}

// DefaultSelection is the activity selection seeded when a destination is
// chosen: the first two resolved names, or fewer when fewer exist.
func DefaultSelection(resolved []string) []string {
	if len(resolved) > 2 {
		resolved = resolved[:2]
	}
	out := make([]string, len(resolved))
	copy(out, resolved)
	return out
}

func allActivityNames(activities []Activity) []string {
	names := make([]string, len(activities))
	for i, a := range activities {
		names[i] = a.Name
	}
	return names
}
