//go:build !unix

package launcher

import "os"

func signalStatus(*os.ProcessState) (int, string, bool) {
	return 0, "", false
}
