package warehouse

// The reconciliation engine recomputes every derived item field from scratch
// from the three event logs. Every mutation re-runs it synchronously over the
// affected name pool; nothing updates derived fields incrementally.

// reconcileAll reconciles every name pool in the registry. Callers must hold
// the write lock.
func (s *Store) reconcileAll() {
	seen := make(map[string]bool)
	for i := range s.items {
		name := s.items[i].Name
		if !seen[name] {
			seen[name] = true
			s.reconcileName(name)
		}
	}
}

// reconcileName recomputes output, stock, reserved, available and the
// last-actor fields for every item whose name equals name. The four pooled
// quantities come out identical across the pool; only input stays per-row.
// Callers must hold the write lock.
func (s *Store) reconcileName(name string) {
	members := make(map[string]bool)
	for i := range s.items {
		if s.items[i].Name == name {
			members[s.items[i].ID] = true
		}
	}
	if len(members) == 0 {
		return
	}

	totalInput := 0
	inputByItem := make(map[string]int)
	for _, d := range s.deliveries {
		if members[d.ItemID] {
			totalInput += d.Quantity
			inputByItem[d.ItemID] += d.Quantity
		}
	}

	totalReserved := 0
	lastRes := -1
	for i, r := range s.reservations {
		if !members[r.ItemID] {
			continue
		}
		totalReserved += r.Quantity
		// Strictly-after comparison keeps the earliest-inserted event among
		// timestamp ties, so the result is deterministic.
		if lastRes < 0 || r.ReservedAt.After(s.reservations[lastRes].ReservedAt) {
			lastRes = i
		}
	}

	totalOutput := 0
	lastPick := -1
	for i, p := range s.pickups {
		if !members[p.ItemID] || !p.Confirmed() {
			continue
		}
		totalOutput += p.Quantity
		if lastPick < 0 || p.PickedUpAt.After(s.pickups[lastPick].PickedUpAt) {
			lastPick = i
		}
	}

	stock := totalInput - totalOutput
	available := stock - totalReserved // may go negative: oversubscription is a signal, not an error

	now := s.now()
	for i := range s.items {
		it := &s.items[i]
		if it.Name != name {
			continue
		}

		it.Input = inputByItem[it.ID]
		it.Output = totalOutput
		it.Stock = stock
		it.Reserved = totalReserved
		it.Available = available

		if lastRes >= 0 {
			r := s.reservations[lastRes]
			at := r.ReservedAt
			it.LastReservedBy = r.ReservedBy
			it.LastReservedAt = &at
			it.LastReservationCode = r.Code
		} else {
			it.LastReservedBy = ""
			it.LastReservedAt = nil
			it.LastReservationCode = ""
		}

		if lastPick >= 0 {
			p := s.pickups[lastPick]
			at := p.PickedUpAt
			it.LastPickedUpBy = p.PickedUpBy
			it.LastPickedUpAt = &at
			it.LastPickupCode = p.ConfirmationCode
		} else {
			it.LastPickedUpBy = ""
			it.LastPickedUpAt = nil
			it.LastPickupCode = ""
		}

		it.UpdatedAt = now
	}
}
