package contracts

type DomainMetrics interface {
	ObserveBooking(result string)
	AddGeneratedSlots(count int)
}
