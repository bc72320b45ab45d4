package internal

import "github.com/iksnae/casechat/testutil"

// CreateTestChat creates a chat definition from testutil.ChatFixture
func CreateTestChat() *CaseChat {
	chat, err := LoadCaseChat(BytesSource(testutil.ChatFixture))
	if err != nil {
		panic(err)
	}
	return chat
}
