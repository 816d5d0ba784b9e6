package check

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/packages"
)

type pkgerrs []*packages.Package

func (pkgs *pkgerrs) Error() string {
	var errs []error

	for _, pkg := range *pkgs {
		ee := make([]error, 0, len(pkg.Errors))
		for _, err := range pkg.Errors {
			ee = append(ee, err)
		}

		errs = append(errs, fmt.Errorf("package %s:\n\t%w", pkg.PkgPath, errors.Join(ee...)))
	}

	return errors.Join(errs...).Error()
}
