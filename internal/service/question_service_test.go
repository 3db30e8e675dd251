package service

import "testing"

func TestQuestionsReturnsCopy(t *testing.T) {
	svc := NewQuestionService(testConfig())
	qs := svc.Questions()
	if len(qs) != 3 || qs[0].Rubric == "" {
		t.Fatalf("want the 3 configured questions with rubrics, got %+v", qs)
	}
	qs[0].Rubric = "changed"
	if svc.Questions()[0].Rubric == "changed" {
		t.Fatal("callers must not be able to modify the configured questions")
	}
}

func TestGetQuestionSetOmitsRubric(t *testing.T) {
	set, err := NewQuestionService(testConfig()).GetQuestionSet()
	if err != nil {
		t.Fatal(err)
	}
	if set.ClassTitle != "2학년 과학" || len(set.Questions) != 3 || set.Questions[2].Index != 3 {
		t.Fatalf("unexpected question set: %+v", set)
	}
}
