package rationalize

import (
	"errors"

	"github.com/planforge/cli/internal/constants"
	"github.com/planforge/cli/internal/errs"
	"github.com/planforge/cli/internal/locale"
	"github.com/planforge/cli/pkg/descriptor"
	"github.com/planforge/cli/pkg/hostpkg"
	"github.com/planforge/cli/pkg/resolver"
)

// Resolution turns typed resolution failures into user-facing errors.
// Anything it does not recognize is left alone and surfaces as an internal
// error.
func Resolution(rerr *error) {
	if *rerr == nil {
		return
	}

	// Subdirectory failures wrap their cause, so rationalize the cause first
	// and layer the subdirectory context on top. Nested subdirectories
	// recurse, naming every level on the way up.
	var errSubdir *resolver.ErrSubdirectory
	if errors.As(*rerr, &errSubdir) {
		cause := errSubdir.Unwrap()
		Resolution(&cause)
		*rerr = errs.WrapUserFacing(cause,
			locale.Tr("err_resolve_subdir", errSubdir.Path),
			errs.SetIf(errs.InputError(cause), errs.SetInput()),
		)
		return
	}

	var errNotFound *descriptor.ErrNotFound
	var errParse *descriptor.ErrParse
	var errMissing *resolver.ErrMissingPackage
	var errVersion *resolver.ErrVersionMismatch
	var errCycle *resolver.ErrCycle
	var errTool *hostpkg.ErrToolNotFound

	switch {
	case errors.As(*rerr, &errNotFound):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_descriptor_not_found", errNotFound.Path, constants.DescriptorFileName),
			errs.SetInput(),
		)

	case errors.As(*rerr, &errParse):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_descriptor_parse", errParse.Path),
			errs.SetInput(),
		)

	case errors.As(*rerr, &errMissing):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_resolve_missing_package", errMissing.Name),
			errs.SetInput(),
			errs.SetTips(locale.T("tip_install_package")),
		)

	case errors.As(*rerr, &errVersion):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_resolve_version_mismatch", errVersion.Name, errVersion.Installed, errVersion.Constraint),
			errs.SetInput(),
			errs.SetTips(locale.T("tip_install_package")),
		)

	case errors.As(*rerr, &errCycle):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_resolve_subdir_cycle", errCycle.Dir),
			errs.SetInput(),
		)

	case errors.As(*rerr, &errTool):
		*rerr = errs.WrapUserFacing(*rerr,
			locale.Tr("err_pkgconfig_missing", errTool.Bin),
			errs.SetTips(locale.T("tip_pkgconfig_flag")),
		)
	}
}
