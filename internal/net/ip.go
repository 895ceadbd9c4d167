package net

import (
	"fmt"
	"net"
)

// GetOutgoingIP finds the local address other devices should use to reach
// this one.
func GetOutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet: look at the interfaces instead.
		return firstIPv4()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// ShareLink is the URL a browser on the same network opens to view the
// mirror.
func ShareLink(port int) string {
	return fmt.Sprintf("http://%s:%d/", GetOutgoingIP(), port)
}

func firstIPv4() string {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4().String()
			}
		}
	}
	return "127.0.0.1"
}
