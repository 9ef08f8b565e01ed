package background

// ReconcileHelpRequests is a background job that repairs request/chat
// pairs left half-moved by a failure between the two writes of an
// accept or finalize. It re-runs the lifecycle repair pass; a pair that
// is already consistent is untouched.
func (m *BackgroundManager) ReconcileHelpRequests() error {
	return m.coordinator.Reconcile()
}
