package cases

func buildSchedule() []int {
	var slots []int

	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))
	slots = append(slots, len(slots))

	return slots
}
