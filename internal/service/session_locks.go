package service

import "sync"

// sessionLocks - мьютекс на каждую сессию. Запись удаляется, когда ее никто не держит.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (l *sessionLocks) Lock(sessionID string) (unlock func()) {
	l.mu.Lock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sessionLock{}
		l.locks[sessionID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// generations реализует "побеждает последний запрос" для асинхронных загрузок.
// Запись живет, пока есть незавершенные запросы этой сессии и цели,
// поэтому счетчик не сбрасывается под ногами у запроса в полете.
type generations struct {
	mu     sync.Mutex
	latest map[string]*generation
}

type generation struct {
	latest   uint64
	inflight int
}

func newGenerations() *generations {
	return &generations{latest: make(map[string]*generation)}
}

func generationKey(sessionID, purpose string) string {
	return sessionID + "/" + purpose
}

// Next выдает номер нового запроса. Каждому Next соответствует ровно один Done.
func (g *generations) Next(sessionID, purpose string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := generationKey(sessionID, purpose)
	gen, ok := g.latest[key]
	if !ok {
		gen = &generation{}
		g.latest[key] = gen
	}
	gen.latest++
	gen.inflight++
	return gen.latest
}

func (g *generations) IsLatest(sessionID, purpose string, n uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	gen, ok := g.latest[generationKey(sessionID, purpose)]
	return ok && gen.latest == n
}

// Done отмечает завершение запроса; последняя завершенная запись удаляется
func (g *generations) Done(sessionID, purpose string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := generationKey(sessionID, purpose)
	gen, ok := g.latest[key]
	if !ok {
		return
	}
	gen.inflight--
	if gen.inflight <= 0 {
		delete(g.latest, key)
	}
}

func (g *generations) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.latest)
}
