package chardict

// search looks for needle in the strictly increasing slice s. It returns
// (index, found) where if found = true, s[index] == needle, and if found =
// false, index is the position at which needle would have to be inserted to
// keep s sorted.
//
// The comparison is three-way: the loop stops as soon as it hits an equal key.
func search(s []byte, needle byte) (uint64, bool) {
	var i = uint64(0)
	var j = uint64(len(s))
	for i < j {
		mid := i + (j-i)/2
		if s[mid] < needle {
			i = mid + 1
		} else if needle < s[mid] {
			j = mid
		} else {
			return mid, true
		}
	}
	return i, false
}
