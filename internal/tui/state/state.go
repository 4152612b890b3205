package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// CardWindow picks the contiguous run of cards [start, end) that fits in
// budget lines and always contains cursor. Cards are added after the cursor
// first, then before it. A budget <= 0 means unlimited.
func CardWindow(heights []int, cursor, budget int) (int, int) {
	total := len(heights)
	if total == 0 {
		return 0, 0
	}
	if budget <= 0 {
		return 0, total
	}
	cursor = ClampCursor(cursor, total)
	start, end := cursor, cursor+1
	used := heights[cursor]
	for {
		grew := false
		if end < total && used+heights[end] <= budget {
			used += heights[end]
			end++
			grew = true
		}
		if start > 0 && used+heights[start-1] <= budget {
			start--
			used += heights[start]
			grew = true
		}
		if !grew {
			return start, end
		}
	}
}
