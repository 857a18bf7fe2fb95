package test

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, getCallerPackage())
}

// LoadFixture reads a file from the shared test/fixtures directory.
func LoadFixture(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(fixturesDir(), name))
}

// MustLoadFixture is LoadFixture for use inside specs.
func MustLoadFixture(name string) []byte {
	fixture, err := LoadFixture(name)
	Expect(err).ToNot(HaveOccurred())
	return fixture
}

func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "fixtures")
}

func getCallerPackage() string {
	var callerPackage string
	if matches := callerPackageRegexp.FindStringSubmatch(getFrameName(3)); matches != nil {
		callerPackage = matches[1]
	}
	return callerPackage
}

func getFrameName(frame int) string {
	var frameName string
	if pc, _, _, ok := runtime.Caller(frame); ok {
		frameName = runtime.FuncForPC(pc).Name()
	}
	return frameName
}

var callerPackageRegexp = regexp.MustCompile("^(.+?)(?:_test)[^/]+$")
