package identity

// checkAcquisition validates the result of a security descriptor query. The
// owner and group SIDs are checked before the descriptor itself so that the
// most specific failure is reported.
func checkAcquisition(ownerValid, groupValid, descriptorPresent bool) error {
	if !ownerValid {
		return newError(KindNotFound, "owner SID not found", nil)
	} else if !groupValid {
		return newError(KindNotFound, "group SID not found", nil)
	} else if !descriptorPresent {
		return newError(KindPermissionDenied, "security descriptor inaccessible", nil)
	}
	return nil
}
