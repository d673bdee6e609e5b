// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"time"

	"github.com/ecodeclub/ekit/syncx"
)

// SessionManager 管理所有进行中的录音会话
type SessionManager struct {
	sessions syncx.Map[string, *Session]
}

func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

func (m *SessionManager) Put(s *Session) {
	m.sessions.Store(s.sn, s)
}

// Get 只有会话的所有者才能拿到
func (m *SessionManager) Get(uid int64, sn string) (*Session, error) {
	s, ok := m.sessions.Load(sn)
	if !ok || s.uid != uid {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *SessionManager) Remove(sn string) {
	m.sessions.Delete(sn)
}

// Sweep 清理超过 ttl 没有活动的会话，返回清理的数量
func (m *SessionManager) Sweep(now time.Time, ttl time.Duration) int {
	var expired []*Session
	m.sessions.Range(func(sn string, s *Session) bool {
		if s.idleSince(now) > ttl {
			expired = append(expired, s)
		}
		return true
	})
	for _, s := range expired {
		s.Reset()
		m.sessions.Delete(s.sn)
	}
	return len(expired)
}
