package cases

func splitHostPort(addr string) (host, port string, err error) {
	if addr == "" {
		return
	}

	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] != ':' {
			continue
		}

		host = addr[:i]
		port = addr[i+1:]
		return
	}

	host = addr
	return
}

func short(addr string) (host string, err error) {
	host = addr
	return
}
