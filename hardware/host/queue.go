// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

package host

// Queue is a simple Program. Transactions are performed in the order they are
// pushed. An optional interrupt handler is called when the interrupt level is
// high and the queue is empty.
type Queue struct {
	pending []Transaction

	// called when the interrupt level is high and the queue is empty. the
	// handler should push the transactions that service the interrupt
	OnInterrupt func(q *Queue)

	// called with the data of every completed read
	OnRead func(tr Transaction, data uint16)
}

// Push transactions onto the end of the queue.
func (q *Queue) Push(tr ...Transaction) {
	q.pending = append(q.pending, tr...)
}

// Len returns the number of transactions waiting in the queue.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Next implements the Program interface.
func (q *Queue) Next(irq bool) (Transaction, bool) {
	if len(q.pending) == 0 && irq && q.OnInterrupt != nil {
		q.OnInterrupt(q)
	}
	if len(q.pending) == 0 {
		return Transaction{}, false
	}
	tr := q.pending[0]
	q.pending = q.pending[1:]
	return tr, true
}

// Complete implements the Program interface.
func (q *Queue) Complete(tr Transaction, data uint16) {
	if !tr.Write && q.OnRead != nil {
		q.OnRead(tr, data)
	}
}
