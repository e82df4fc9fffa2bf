package sequence

// Average returns the truncated integer mean of values.
//
// The sum is accumulated in int64, so sequences of bounded elements (in
// particular anything Generate produces) cannot overflow at realistic
// lengths. Division truncates toward zero, matching Go integer division.
func Average(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, NewEmptySequenceError()
	}

	var sum int64
	for _, v := range values {
		sum += v
	}
	return sum / int64(len(values)), nil
}
