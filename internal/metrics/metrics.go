// Package metrics exposes application metrics collectors.
package metrics

const namespace = "optracker"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
