package cases

func Process(data any) error {
	_ = data
	return nil
}

func ProcessAll(items ...any) error {
	return nil
}

func internalProcess(data any) {
	_ = data
}

func Describe(name string, payload interface{}) string {
	return name
}
