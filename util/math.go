package util

func MinUint64(values ...uint64) (min uint64) {
	for i, v := range values {
		if i > 0 && v > min {
			continue
		}
		min = v
	}
	return min
}

func MaxUint64(values ...uint64) (max uint64) {
	for _, v := range values {
		if v < max {
			continue
		}
		max = v
	}
	return max
}
