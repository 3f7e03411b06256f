// Package trial turns a tenant's raw trial fields into a derived
// classification: status, days remaining, banner message and severity,
// upgrade prompt flag, and the list of features blocked on expiry.
//
// CalculateAt is a pure function of the tenant record and "now"; nothing
// is cached or persisted. The state machine is monotonic with time:
// active → ending_soon → expired. Only an external payment event
// (conversion) exits the trial track, and the grace_period status is
// assigned solely by the payment collaborator; the calculator passes it
// through but never produces it.
//
//	status := trial.Calculate(t)
//	if status.Status == trial.StatusExpired {
//		for _, f := range status.BlockedFeatures {
//			// render f.Feature locked with f.Reason
//		}
//	}
//
// Day arithmetic uses UTC calendar-day boundaries: a trial ending later
// today is the "last day" (0 days remaining), not expired.
package trial
