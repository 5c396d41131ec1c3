package signup

// Subscriber receives account lifecycle notifications after the transition
// has been persisted. Subscribers are observation points only: they have no
// return value and cannot change a workflow's outcome.
type Subscriber interface {
	AccountCreated(account *Account)
	AccountVerified(account *Account)
}

func (s *Service) Subscribe(sub Subscriber) {
	s.subscribers = append(s.subscribers, sub)
}

func (s *Service) publishCreated(account *Account) {
	for _, sub := range s.subscribers {
		sub.AccountCreated(account)
	}
}

func (s *Service) publishVerified(account *Account) {
	for _, sub := range s.subscribers {
		sub.AccountVerified(account)
	}
}
