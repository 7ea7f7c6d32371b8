package core

// Metrics records workflow counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// RegistrationCompleted counts a registration by payment method and result
	RegistrationCompleted(paymentMethod, result string)
	// LoginAttempted counts a login by result (success, invalid, unpaid, unavailable)
	LoginAttempted(result string)
	// PaymentProcessed counts a payment event by kind (gateway, crypto, review) and result
	PaymentProcessed(kind, result string)
	// FollowUpFinished counts a follow-up by name and result (success, failure, dropped)
	FollowUpFinished(name, result string)
}
