package cases

import "context"

func fetch(ctx context.Context, url string) error {
	_ = ctx
	_ = url
	return nil
}

func store(name string, ctx context.Context) error {
	_ = ctx
	_ = name
	return nil
}

func watch(every int, ctx context.Context, names ...string) error {
	_ = ctx
	return nil
}
