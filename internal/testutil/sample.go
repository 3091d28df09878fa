// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"github.com/ianlewis/go-hanzi/char"
	"github.com/ianlewis/go-hanzi/comp"
	"github.com/ianlewis/go-hanzi/word"
)

// SampleCharacters returns a small set of composition records.
//
// 尔, 行 and 谢 reference characters that are not in the set.
func SampleCharacters() []*char.Record {
	return []*char.Record{
		{Hanzi: "一", Strokes: 1, Kind: comp.Primitive, First: char.Part{Hanzi: "一", Strokes: 1}, Second: char.Part{Hanzi: "*"}, Cangjie: "M", Verification: "Y", Radical: "一"},
		{Hanzi: "女", Strokes: 3, Kind: comp.Primitive, First: char.Part{Hanzi: "女", Strokes: 3}, Second: char.Part{Hanzi: "*"}, Cangjie: "V", Verification: "Y", Radical: "女"},
		{Hanzi: "子", Strokes: 3, Kind: comp.Primitive, First: char.Part{Hanzi: "子", Strokes: 3}, Second: char.Part{Hanzi: "*"}, Cangjie: "ND", Verification: "Y", Radical: "子"},
		{Hanzi: "宀", Strokes: 3, Kind: comp.Primitive, First: char.Part{Hanzi: "宀", Strokes: 3}, Second: char.Part{Hanzi: "*"}, Cangjie: "J", Verification: "Y", Radical: "宀"},
		{Hanzi: "亻", Strokes: 2, Kind: comp.Primitive, First: char.Part{Hanzi: "亻", Strokes: 2}, Second: char.Part{Hanzi: "*"}, Cangjie: "O", Verification: "Y", Radical: "*"},
		{Hanzi: "好", Strokes: 6, Kind: comp.Horizontal, First: char.Part{Hanzi: "女", Strokes: 3}, Second: char.Part{Hanzi: "子", Strokes: 3}, Cangjie: "VND", Verification: "Y", Radical: "女"},
		{Hanzi: "字", Strokes: 6, Kind: comp.Vertical, First: char.Part{Hanzi: "宀", Strokes: 3}, Second: char.Part{Hanzi: "子", Strokes: 3}, Cangjie: "JND", Verification: "Y", Radical: "子"},
		{Hanzi: "安", Strokes: 6, Kind: comp.Vertical, First: char.Part{Hanzi: "宀", Strokes: 3}, Second: char.Part{Hanzi: "女", Strokes: 3}, Cangjie: "JV", Verification: "Y", Radical: "宀"},
		{Hanzi: "尔", Strokes: 5, Kind: comp.Vertical, First: char.Part{Hanzi: "⺈", Strokes: 2}, Second: char.Part{Hanzi: "小", Strokes: 3}, Cangjie: "NF", Verification: "Y", Radical: "小"},
		{Hanzi: "你", Strokes: 7, Kind: comp.Horizontal, First: char.Part{Hanzi: "亻", Strokes: 2}, Second: char.Part{Hanzi: "尔", Strokes: 5}, Cangjie: "ONF", Verification: "Y", Radical: "亻"},
		{Hanzi: "行", Strokes: 6, Kind: comp.Horizontal, First: char.Part{Hanzi: "彳", Strokes: 3}, Second: char.Part{Hanzi: "亍", Strokes: 3}, Cangjie: "HOMMN", Verification: "Y", Radical: "行"},
		{Hanzi: "谢", Strokes: 12, Kind: comp.Horizontal, First: char.Part{Hanzi: "讠", Strokes: 2}, Second: char.Part{Hanzi: "射", Strokes: 10}, Cangjie: "IVHI", Verification: "Y", Radical: "讠"},
	}
}

// SampleWordLists returns six word lists using SampleCharacters. The last
// list is empty.
func SampleWordLists() [][]*word.Record {
	return [][]*word.Record{
		{
			{Simplified: "你好", Traditional: "你好", Pinyin: "ni3hao3", PinyinUnicode: "nǐhǎo", Translation: "hello"},
			{Simplified: "好", Traditional: "好", Pinyin: "hao3", PinyinUnicode: "hǎo", Translation: "good"},
			{Simplified: "谢谢", Traditional: "謝謝", Pinyin: "xie4xie5", PinyinUnicode: "xièxie", Translation: "thanks"},
		},
		{
			{Simplified: "好", Traditional: "好", Pinyin: "hao4", PinyinUnicode: "hào", Translation: "to be fond of"},
			{Simplified: "行", Traditional: "行", Pinyin: "xing2", PinyinUnicode: "xíng", Translation: "to walk"},
		},
		{
			{Simplified: "行", Traditional: "行", Pinyin: "hang2", PinyinUnicode: "háng", Translation: "row"},
			{Simplified: "女子", Traditional: "女子", Pinyin: "nu:3zi3", PinyinUnicode: "nǚzǐ", Translation: "woman"},
		},
		{
			{Simplified: "字", Traditional: "字", Pinyin: "zi4", PinyinUnicode: "zì", Translation: "letter; symbol"},
		},
		{
			{Simplified: "一一", Traditional: "一一", Pinyin: "yi1yi1", PinyinUnicode: "yīyī", Translation: "one by one"},
		},
		{},
	}
}
