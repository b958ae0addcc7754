package cases

var registry = map[string]int{}

var total int

func init() {
	registry["a"] = 1
	total = 10
	total++

	local := 0
	local = 5
	_ = local
}
